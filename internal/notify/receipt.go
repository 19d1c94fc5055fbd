package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"donation-app/internal/domain/donations"
)

// ReceiptInput carries the donation facts a tax receipt is rendered from.
// Tier is the nominal tier recorded on the session; a custom donation that
// cleared a tier threshold still earns that tier's benefit list.
type ReceiptInput struct {
	Tier          donations.Tier
	AmountCents   int64
	SessionID     string
	PublicSponsor bool
	Date          time.Time
	OrgName       string
	EIN           string
}

type receiptData struct {
	OrgName       string
	EIN           string
	TierName      string
	ShowTier      bool
	ShowNextSteps bool
	ReceiptDate   string
	SessionID     string
	Amount        string
	Benefits      []string
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #000; color: #fff; padding: 30px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 30px; }
    .receipt-box { background-color: #fff; border: 2px solid #000; padding: 20px; margin: 20px 0; }
    .amount { font-size: 32px; font-weight: bold; color: #000; margin: 10px 0; }
    .info-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #eee; }
    .label { font-weight: bold; }
    .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    ul { list-style-type: none; padding-left: 0; }
    li { padding: 5px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Sponsorship Receipt</h1>
      <p>{{.OrgName}}</p>
    </div>

    <div class="content">
      <h2>Thank You for Your Generous Support!</h2>
      <p>We are deeply grateful for your {{if .ShowTier}}{{.TierName}} tier {{end}}sponsorship. Your contribution directly supports our mission to design, build, and race a solar-powered vehicle.</p>

      <div class="receipt-box">
        <h3 style="margin-top: 0; border-bottom: 2px solid #000; padding-bottom: 10px;">Tax Receipt</h3>

        <div class="info-row">
          <span class="label">Receipt Date:</span>
          <span>{{.ReceiptDate}}</span>
        </div>

        <div class="info-row">
          <span class="label">Transaction ID:</span>
          <span>{{.SessionID}}</span>
        </div>
{{if .ShowTier}}
        <div class="info-row">
          <span class="label">Sponsorship Tier:</span>
          <span>{{.TierName}}</span>
        </div>
{{end}}
        <div class="info-row" style="border-bottom: 2px solid #000;">
          <span class="label">Donation Amount:</span>
          <span class="amount">{{.Amount}}</span>
        </div>

        <div style="margin-top: 20px; padding: 15px; background-color: #f5f5f5;">
          <p style="margin: 0;"><strong>Tax Information:</strong></p>
          <p style="margin: 5px 0 0 0;">EIN: {{.EIN}}</p>
          <p style="margin: 5px 0 0 0; font-size: 12px;">This donation is tax-deductible to the extent allowed by law. Please consult your tax advisor for details.</p>
        </div>
      </div>

      <h3>Your Sponsorship Benefits:</h3>
      <ul style="background-color: #fff; padding: 20px; border-left: 4px solid #000;">
{{range .Benefits}}        <li style="margin-bottom: 8px;">{{.}}</li>
{{end}}      </ul>
{{if .ShowNextSteps}}
      <p><strong>Next Steps:</strong></p>
      <p>Our team will contact you within 48 hours to:</p>
      <ul>
        <li>&#10003; Collect your logo and branding materials</li>
        <li>&#10003; Discuss placement and visibility options</li>
        <li>&#10003; Schedule updates on our progress</li>
      </ul>
{{end}}
      <p>If you have any questions, please don't hesitate to contact us.</p>
    </div>

    <div class="footer">
      <p>This is an automated receipt from {{.OrgName}}</p>
      <p>Please save this email for your tax records</p>
    </div>
  </div>
</body>
</html>`))

// RenderReceipt produces the donor receipt subject and HTML body.
//
// The benefit list always follows the effective tier: a nominal custom
// donation is re-resolved against the thresholds so an amount that clears
// one still earns that tier's benefits. The tier *name* appears only for
// donors who opted into public recognition, and never for an effective
// custom tier; the "next steps" block additionally requires a real
// nominal tier, since its language only applies to defined tiers.
func RenderReceipt(in ReceiptInput) (string, string, error) {
	effective := in.Tier
	if effective == donations.TierCustom {
		effective = donations.Resolve(in.AmountCents)
	}

	showTier := in.PublicSponsor && effective != donations.TierCustom
	showNextSteps := in.PublicSponsor && in.Tier != donations.TierCustom

	subject := "Thank You for Your Sponsorship - Tax Receipt"
	if showTier {
		subject = fmt.Sprintf("Thank You for Your %s Sponsorship - Tax Receipt", donations.Display(effective))
	}

	var body bytes.Buffer
	err := receiptTmpl.Execute(&body, receiptData{
		OrgName:       in.OrgName,
		EIN:           in.EIN,
		TierName:      donations.Display(effective),
		ShowTier:      showTier,
		ShowNextSteps: showNextSteps,
		ReceiptDate:   in.Date.Format("January 2, 2006"),
		SessionID:     in.SessionID,
		Amount:        donations.FormatUSD(in.AmountCents),
		Benefits:      donations.Benefits(effective),
	})
	if err != nil {
		return "", "", fmt.Errorf("rendering receipt: %w", err)
	}

	return subject, body.String(), nil
}
