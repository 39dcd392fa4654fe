package friendlyerrors

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// DecodeAndReport decodes JSON from r into dst, normalizes, validates, and
// translates any failure into a Report. Returns nil when dst is valid.
// Decode failures land in the report too, so HTTP handlers deal with one
// error shape:
//
//	var in CreateUser
//	if rep := friendlyerrors.DecodeAndReport(r.Body, &in); rep != nil {
//		friendlyerrors.WriteReport(w, rep)
//		return
//	}
func DecodeAndReport(r io.Reader, dst any) *Report {
	return DecodeAndReportContext(context.Background(), r, dst)
}

// DecodeAndReportContext is like DecodeAndReport but passes a context to
// context-aware rules, normalizers, and the object validation step.
func DecodeAndReportContext(ctx context.Context, r io.Reader, dst any) *Report {
	return DefaultTranslator.Report(dst, DecodeAndValidateContext(ctx, r, dst))
}

// WriteReport writes rep as a JSON 400 response.
func WriteReport(w http.ResponseWriter, rep *Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rep)
}
