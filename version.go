package anvil

import "fmt"

// ProtoVersion is the HTTP protocol version a request was received
// with. The zero value is treated as HTTP/0.9 for comparison purposes.
type ProtoVersion struct {
	Major int
	Minor int
}

// Common protocol versions.
var (
	HTTP10 = ProtoVersion{Major: 1, Minor: 0}
	HTTP11 = ProtoVersion{Major: 1, Minor: 1}
	HTTP2  = ProtoVersion{Major: 2, Minor: 0}
)

// AtLeast reports whether the version is major.minor or higher,
// mirroring http.Request.ProtoAtLeast.
func (v ProtoVersion) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// String implements fmt.Stringer.
func (v ProtoVersion) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}
