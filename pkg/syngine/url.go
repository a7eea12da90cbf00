package syngine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultModel is the Green's function database queried when a request names
// no model of its own.
const DefaultModel = "ak135f_2s"

// BuildURL constructs the service query URL for a validated request. This is
// pure string building over the request parameters; the moment tensor
// components are written in scientific notation with the leading plus sign of
// the exponent stripped, which is what the service expects.
func BuildURL(endpoint string, req *Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteString("?model=")
	b.WriteString(model)

	fmt.Fprintf(&b, "&sourcelongitude=%f&sourcelatitude=%f&sourcedepthinmeters=%s",
		req.SourceLon, req.SourceLat, formatNumber(req.SourceDepth))

	// Component order rr,tt,pp,rt,rp,tp with rp mirroring pr, per the
	// service's USE tensor convention.
	t := req.Tensor
	tensor := fmt.Sprintf("%e,%e,%e,%e,%e,%e", t.RR, t.TT, t.PP, t.RT, t.PR, t.TP)
	b.WriteString("&sourcemomenttensor=")
	b.WriteString(strings.ReplaceAll(tensor, "+", ""))

	if req.SourceWidth > 0 {
		fmt.Fprintf(&b, "&sourcewidth=%d", req.SourceWidth)
	}

	fmt.Fprintf(&b, "&receiverlongitude=%s&receiverlatitude=%s",
		formatNumber(req.ReceiverLon), formatNumber(req.ReceiverLat))

	if req.Duration > 0 {
		fmt.Fprintf(&b, "&endtime=%s", formatNumber(req.Duration))
	}

	b.WriteString("&units=")
	b.WriteString(req.GMT.String())
	b.WriteString("&components=")
	b.WriteString(string(req.Components))
	b.WriteString("&format=miniseed")

	return b.String(), nil
}

// formatNumber writes a float without trailing zeros
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
