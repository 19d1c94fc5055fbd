package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"donation-app/internal/domain/donations"
)

// AdminInput is everything the internal alert lists. The donor's
// public/private choice is reported, never applied: staff always see the
// full details.
type AdminInput struct {
	FullName      string
	Email         string
	Phone         string
	Address       donations.BillingAddress
	AmountCents   int64
	Tier          donations.Tier
	PublicSponsor bool
	OrgName       string
}

type adminData struct {
	FullName      string
	Email         string
	Phone         string
	Address       donations.BillingAddress
	Amount        string
	TierName      string
	PublicSponsor string
	OrgName       string
}

var adminTmpl = template.Must(template.New("admin").Parse(`<h1>New Donation Notification</h1>
<p>A new donation has been received. Here are the details:</p>

<h2>Donor Information</h2>
<ul>
  <li><strong>Full Name:</strong> {{.FullName}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Phone:</strong> {{.Phone}}</li>
  <li><strong>Public Sponsor:</strong> {{.PublicSponsor}}</li>
</ul>

<h2>Billing Address</h2>
<p>
  {{.Address.Line1}}<br/>
{{if .Address.Line2}}  {{.Address.Line2}}<br/>
{{end}}  {{.Address.City}}, {{.Address.State}} {{.Address.PostalCode}}<br/>
  {{.Address.Country}}
</p>

<h2>Donation Details</h2>
<ul>
  <li><strong>Amount:</strong> {{.Amount}}</li>
  <li><strong>Tier:</strong> {{.TierName}}</li>
</ul>

<p style="margin-top: 30px; color: #666; font-size: 12px;">
  This email was automatically generated from the {{.OrgName}} donation system.
</p>`))

// RenderAdminAlert produces the internal notification subject and body.
func RenderAdminAlert(in AdminInput) (string, string, error) {
	recognition := "No - Private donation"
	if in.PublicSponsor {
		recognition = "Yes - Wants public recognition"
	}

	var body bytes.Buffer
	err := adminTmpl.Execute(&body, adminData{
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Amount:        donations.FormatUSD(in.AmountCents),
		TierName:      donations.Display(in.Tier),
		PublicSponsor: recognition,
		OrgName:       in.OrgName,
	})
	if err != nil {
		return "", "", fmt.Errorf("rendering admin alert: %w", err)
	}

	subject := fmt.Sprintf("New Donation Received - %s", donations.FormatUSD(in.AmountCents))
	return subject, body.String(), nil
}
