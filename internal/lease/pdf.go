package lease

import (
	"bytes"
	"fmt"
	"time"

	"leasedesk/pkg/types"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth  = 600
	pageHeight = 800
	marginLeft = 50
)

// RenderPDF lays out the lease agreement on a single fixed-size page: a
// bold title followed by a fixed sequence of content lines at predetermined
// offsets. Validation is assumed to have already run; the security deposit
// defaults to the monthly rent when absent.
func RenderPDF(req types.LeaseRequest) ([]byte, error) {
	securityDeposit := req.SecurityDeposit
	if securityDeposit == "" {
		securityDeposit = req.MonthlyRent
	}

	type contentLine struct {
		text string
		y    float64
	}

	// Vertical offsets are measured from the bottom edge, matching the
	// layout the web client was built against.
	contentLines := []contentLine{
		{fmt.Sprintf("THIS LEASE AGREEMENT made this %s", time.Now().Format("1/2/2006")), 720},
		{"BETWEEN:", 700},
		{fmt.Sprintf("%s (Landlord)", req.LandlordName), 680},
		{"AND:", 660},
		{fmt.Sprintf("%s (Tenant)", req.TenantName), 640},
		{"FOR THE PREMISES AT:", 620},
		{req.PropertyAddress, 600},
		{"TERM:", 580},
		{fmt.Sprintf("From %s to %s", req.LeaseStartDate, req.LeaseEndDate), 560},
		{"RENT:", 540},
		{fmt.Sprintf("$%s per month, payable on the 1st day of each month", req.MonthlyRent), 520},
		{"SECURITY DEPOSIT:", 500},
		{fmt.Sprintf("$%s", securityDeposit), 480},
		{"The parties agree to the terms of this lease.", 460},
		{"This document requires digital signature from all parties.", 440},
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(marginLeft, pageHeight-750, "RESIDENTIAL LEASE AGREEMENT")

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range contentLines {
		pdf.Text(marginLeft, pageHeight-line.y, line.text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render lease pdf: %w", err)
	}

	return buf.Bytes(), nil
}
