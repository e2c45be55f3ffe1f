package pov

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a view from its spec string. Supported forms are
// "global", "local_<radius>", "forward_<length>" and
// "forward_<length>_<width>"; local and forward accept an "xray_" part
// after the view name to see through walls and locked doors.
func Parse(spec string) (POV, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	switch {
	case s == "global":
		return NewGlobalView(), nil

	case strings.HasPrefix(s, "local_"):
		rest, xray := trimXray(strings.TrimPrefix(s, "local_"))
		radius, err := strconv.Atoi(rest)
		if err != nil || radius < 0 {
			return nil, fmt.Errorf("invalid radius %q in pov spec %q", rest, spec)
		}
		return NewLocalView(radius, xray), nil

	case strings.HasPrefix(s, "forward_"):
		rest, xray := trimXray(strings.TrimPrefix(s, "forward_"))
		lengthPart, widthPart, hasWidth := strings.Cut(rest, "_")

		length, err := strconv.Atoi(lengthPart)
		if err != nil || length < 0 {
			return nil, fmt.Errorf("invalid length %q in pov spec %q", lengthPart, spec)
		}

		width := 1
		if hasWidth {
			width, err = strconv.Atoi(widthPart)
			if err != nil || width < 0 {
				return nil, fmt.Errorf("invalid width %q in pov spec %q", widthPart, spec)
			}
		}
		if width%2 != 1 {
			return nil, fmt.Errorf("pov width %d must be odd", width)
		}
		return NewForwardView(length, width, xray), nil
	}

	return nil, fmt.Errorf("unknown pov spec %q", spec)
}

func trimXray(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, "xray_"); ok {
		return rest, true
	}
	return s, false
}
