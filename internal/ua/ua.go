// internal/ua/ua.go
//
// User-Agent parsing for the contact pipeline.
//
// The contact handler needs exactly two things from a User-Agent string:
// a bot verdict (crawlers must not trigger emails or rows) and a compact
// browser/OS/device description for the submission audit log.  This
// wrapper reduces `github.com/avct/uasurfer` to those two, so its enums
// and version structs never leak past this package.
package ua

import (
	"fmt"
	"strconv"

	surfer "github.com/avct/uasurfer"
)

// Info carries the UA attributes used by the contact handler and the
// submission audit log.
//
// Device will be one of: "Desktop", "Mobile", "Tablet", or "Other".
type Info struct {
	Browser   string
	Version   string
	OS        string
	OSVersion string
	Device    string
	Platform  string
	IsBot     bool
	Raw       string
}

// Parse converts a raw header into an Info struct.  After the first call
// the underlying library reuses internal buffers, so Parse allocates only
// on rarely-seen strings.
func Parse(raw string) Info {
	u := surfer.Parse(raw)

	info := Info{
		Browser:   u.Browser.Name.String(),
		Version:   versionToString(u.Browser.Version),
		OS:        u.OS.Name.String(),
		OSVersion: versionToString(u.OS.Version),
		Platform:  u.OS.Platform.String(),
		IsBot:     u.IsBot(),
		Raw:       raw,
	}

	switch u.DeviceType {
	case surfer.DeviceComputer:
		info.Device = "Desktop"
	case surfer.DeviceTablet:
		info.Device = "Tablet"
	case surfer.DevicePhone, surfer.DeviceWearable:
		info.Device = "Mobile"
	default:
		info.Device = "Other"
	}

	return info
}

// versionToString renders a semantic version in dotted form while trimming
// trailing zeros, e.g. 17.0.0 → "17", 17.3.0 → "17.3", 17.3.1 → "17.3.1".
func versionToString(v surfer.Version) string {
	if v.Major == 0 && v.Minor == 0 && v.Patch == 0 {
		return ""
	}
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor != 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return strconv.Itoa(int(v.Major))
}
