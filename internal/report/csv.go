package report

import (
	"encoding/csv"
	"io"
	"time"
)

var csvHeader = []string{
	"encounter_id", "created_at", "patient", "sex",
	"company", "branch", "department", "shift",
	"va_od_sc", "va_os_sc", "va_od_cc", "va_os_cc",
	"rx_od_sph", "rx_os_sph",
	"pay_status", "pay_total", "pay_method",
	"bought",
}

// GenerateCSV writes the raw per-encounter export, one row per visit.
func GenerateCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		enc := e.Enc
		bought := "no"
		if DidBuy(enc) {
			bought = "si"
		}
		row := []string{
			enc.ID.String(),
			enc.CreatedAt.Format(time.RFC3339),
			entryName(e),
			e.Sex,
			enc.CompanyName, enc.Branch, enc.Department, enc.Shift,
			enc.VaOdSc, enc.VaOsSc, enc.VaOdCc, enc.VaOsCc,
			enc.RxOdSph, enc.RxOsSph,
			enc.PayStatus, enc.PayTotal, enc.PayMethod,
			bought,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
