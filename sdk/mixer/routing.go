package mixer

import (
	"regexp"
	"strconv"

	"github.com/leandrodaf/mixer/sdk/contracts"
)

// routeAxis says which list of the routing index a strategy feeds.
type routeAxis int

const (
	analogAxis routeAxis = iota
	digitalAxis
)

// routeStrategy pairs a name pattern with the axis it recognizes. The
// pattern must capture the 1-based input number first and the 1-based
// output number second; trailing text after the output is tolerated.
//
// Firmware naming conventions vary per device family. New schemes
// register here without touching the rest of the pipeline.
type routeStrategy struct {
	pattern *regexp.Regexp
	axis    routeAxis
}

var routeStrategies = []routeStrategy{
	{regexp.MustCompile(`^AIn(\d+)\s*-\s*Out(\d+)(?:\b.*)?$`), analogAxis},
	{regexp.MustCompile(`^DIn(\d+)\s*-\s*Out(\d+)(?:\b.*)?$`), digitalAxis},
}

// BuildRoutingIndex recovers input x output matrix topology from control
// names. Controls that match no strategy are excluded; matched routes
// keep catalog order. The ControlIndex fields are only valid against the
// catalog passed in here.
func BuildRoutingIndex(ctrls []contracts.ControlDescriptor) contracts.RoutingIndex {
	var index contracts.RoutingIndex
	for i, c := range ctrls {
		for _, s := range routeStrategies {
			m := s.pattern.FindStringSubmatch(c.Name)
			if m == nil {
				continue
			}
			ref := contracts.RouteRef{
				Input:        matrixIndex(m[1]),
				Output:       matrixIndex(m[2]),
				ControlIndex: i,
			}
			switch s.axis {
			case analogAxis:
				index.AnalogRoutes = append(index.AnalogRoutes, ref)
			case digitalAxis:
				index.DigitalRoutes = append(index.DigitalRoutes, ref)
			}
			break
		}
	}
	return index
}

// matrixIndex converts a 1-based number from an element name to a 0-based
// matrix index. Parse failures and a literal 0 both land on 0; the
// subtraction never underflows.
func matrixIndex(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}
