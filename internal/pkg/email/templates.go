// internal/pkg/email/templates.go
package email

// Order email templates. Item rows carry per-line totals computed with the
// same pricing rules the cart uses.

const customerConfirmationTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #1a1a1a; color: white; padding: 20px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 20px; }
    .order-details { background-color: white; padding: 20px; margin: 20px 0; border-radius: 5px; }
    table { width: 100%; border-collapse: collapse; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>{{.SiteName}}</h1>
    </div>
    <div class="content">
      <h2>Order Confirmation</h2>
      <p>Thank you for your order, {{.FirstName}}!</p>
      <p>Your order has been received and is being processed.</p>

      <div class="order-details">
        <h3>Order Details</h3>
        <p><strong>Order ID:</strong> {{.OrderNumber}}</p>
        <p><strong>Order Date:</strong> {{.OrderDate}}</p>

        <h4>Shipping Address:</h4>
        <p>
          {{.FirstName}} {{.LastName}}<br>
          {{.Address}}<br>
          {{.City}}, {{.State}} {{.ZipCode}}<br>
          {{.Country}}
        </p>

        <h4>Contact Information:</h4>
        <p>
          Email: {{.Email}}<br>
          Phone: {{.Phone}}
        </p>

        <h4>Order Items:</h4>
        <table>
          {{range .Items}}
          <tr>
            <td style="padding: 10px; border-bottom: 1px solid #eee;">
              <strong>{{.Name}}</strong><br>
              <small>{{.Brand}} - Qty: {{.Quantity}}</small>
            </td>
            <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">
              {{.LineTotal}}
            </td>
          </tr>
          {{end}}
          <tr>
            <td style="padding: 10px; border-top: 2px solid #333; font-weight: bold;">Total</td>
            <td style="padding: 10px; border-top: 2px solid #333; text-align: right; font-weight: bold;">
              {{.Total}}
            </td>
          </tr>
        </table>
      </div>

      <p>We'll send you another email when your order ships.</p>
      <p>If you have any questions, please contact us at {{.SupportEmail}}</p>
    </div>
    <div class="footer">
      <p>&copy; {{.Year}} {{.SiteName}}. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`

const storeNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #1a1a1a; color: white; padding: 20px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 20px; }
    .order-details { background-color: white; padding: 20px; margin: 20px 0; border-radius: 5px; }
    table { width: 100%; border-collapse: collapse; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>New Order Received</h1>
    </div>
    <div class="content">
      <h2>Order #{{.OrderNumber}}</h2>

      <div class="order-details">
        <h3>Customer Information</h3>
        <p>
          <strong>Name:</strong> {{.FirstName}} {{.LastName}}<br>
          <strong>Email:</strong> {{.Email}}<br>
          <strong>Phone:</strong> {{.Phone}}
        </p>

        <h3>Shipping Address</h3>
        <p>
          {{.Address}}<br>
          {{.City}}, {{.State}} {{.ZipCode}}<br>
          {{.Country}}
        </p>

        {{if .SpecialInstructions}}
        <h3>Special Instructions</h3>
        <p>{{.SpecialInstructions}}</p>
        {{end}}

        <h3>Order Items</h3>
        <table>
          {{range .Items}}
          <tr>
            <td style="padding: 10px; border-bottom: 1px solid #eee;">
              <strong>{{.Name}}</strong><br>
              <small>{{.Brand}} - Qty: {{.Quantity}}</small>
            </td>
            <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">
              {{.LineTotal}}
            </td>
          </tr>
          {{end}}
          <tr>
            <td style="padding: 10px; border-top: 2px solid #333; font-weight: bold;">Total</td>
            <td style="padding: 10px; border-top: 2px solid #333; text-align: right; font-weight: bold;">
              {{.Total}}
            </td>
          </tr>
        </table>
      </div>
    </div>
  </div>
</body>
</html>`
