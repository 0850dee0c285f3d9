package mail

// HTML bodies for the two transactional order emails. Kept simple enough
// to render in every campus mail client.

const purchaseConfirmationHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Purchase Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #4CAF50; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1>Purchase Confirmation</h1>
    <p>Thank you for your purchase!</p>
  </div>

  <div style="background-color: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px;">
    <h2>Hello {{.Buyer.FullName}}!</h2>

    <p>We're excited to confirm that your order has been successfully placed. Here are the details:</p>

    <div style="background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; border-left: 4px solid #4CAF50;">
      <h3>Order Information</h3>
      <p><strong>Order ID:</strong> {{.Order.ID}}</p>
      <p><strong>Order Date:</strong> {{.Order.CreatedAt.Format "02 Jan 2006"}}</p>
      <p><strong>Payment Status:</strong> {{.Order.Status}}</p>
      <p><strong>Total Amount:</strong> ${{.Order.Amount}}</p>
    </div>

    <div style="background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; border-left: 4px solid #4CAF50;">
      <h3>Item Details</h3>
      <img src="{{.Item.Image.URL}}" alt="{{.Item.Title}}" style="width: 80px; height: 80px; object-fit: cover; border-radius: 5px;">
      <h4>{{.Item.Title}}</h4>
      <p>{{.Item.Description}}</p>
      <p><strong>Price:</strong> ${{.Item.Price}}</p>
    </div>

    <div style="background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; border-left: 4px solid #4CAF50;">
      <h3>Delivery Information</h3>
      <p><strong>Delivery Address:</strong> {{.Order.Address}}</p>
      <p><strong>Contact Phone:</strong> {{.Order.Phone}}</p>
      <p><strong>Delivery Status:</strong> {{if .Order.Delivered}}Delivered{{else}}Processing{{end}}</p>
    </div>

    {{if .PickupCode}}
    <div style="background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; border-left: 4px solid #4CAF50;">
      <h3>Pickup Code</h3>
      <p>Show the attached QR code to the seller when you collect your item.</p>
    </div>
    {{end}}

    <p>We'll keep you updated on your order status. If you have any questions, feel free to contact us.</p>

    <p>Thank you for choosing CampusKart!</p>
  </div>

  <div style="text-align: center; margin-top: 20px; color: #666; font-size: 14px;">
    <p>Best regards,<br>The CampusKart Team</p>
    <p>This is an automated email. Please do not reply to this message.</p>
  </div>
</body>
</html>
`

const orderNotificationHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>New Order Notification</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background-color: #2196F3; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
    <h1>New Order Received</h1>
    <p>Action Required</p>
  </div>

  <div style="background-color: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px;">
    <h2>New Order Alert!</h2>

    <p>A new order has been placed on CampusKart. Please review the details below:</p>

    <div style="background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; border-left: 4px solid #2196F3;">
      <h3>Order Information</h3>
      <p><strong>Order ID:</strong> {{.Order.ID}}</p>
      <p><strong>Order Date:</strong> {{.Order.CreatedAt.Format "02 Jan 2006"}}</p>
      <p><strong>Payment Status:</strong> {{.Order.Status}}</p>
      <p><strong>Total Amount:</strong> ${{.Order.Amount}}</p>
      <p><strong>Payment ID:</strong> {{.Order.PaymentID}}</p>
    </div>

    <div style="background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; border-left: 4px solid #2196F3;">
      <h3>Customer Information</h3>
      <p><strong>Name:</strong> {{.Buyer.FullName}}</p>
      <p><strong>Email:</strong> {{.Order.Email}}</p>
      <p><strong>Phone:</strong> {{.Order.Phone}}</p>
      <p><strong>Address:</strong> {{.Order.Address}}</p>
    </div>

    <div style="background-color: white; padding: 15px; border-radius: 5px; margin: 15px 0; border-left: 4px solid #2196F3;">
      <h3>Item Details</h3>
      <img src="{{.Item.Image.URL}}" alt="{{.Item.Title}}" style="width: 80px; height: 80px; object-fit: cover; border-radius: 5px;">
      <h4>{{.Item.Title}}</h4>
      <p>{{.Item.Description}}</p>
      <p><strong>Price:</strong> ${{.Item.Price}}</p>
    </div>

    <p><strong>Next Steps:</strong></p>
    <ul>
      <li>Verify payment status</li>
      <li>Arrange the campus handover</li>
      <li>Scan the buyer's pickup code at delivery</li>
    </ul>
  </div>

  <div style="text-align: center; margin-top: 20px; color: #666; font-size: 14px;">
    <p>CampusKart Admin Panel</p>
    <p>This is an automated notification email.</p>
  </div>
</body>
</html>
`
