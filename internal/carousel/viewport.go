package carousel

// DeviceClass is the coarse viewport category used to pick slide images.
type DeviceClass int

const (
	Mobile DeviceClass = iota
	Tablet
	Desktop
)

func (c DeviceClass) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Breakpoints are the exclusive upper widths of the mobile and tablet classes.
type Breakpoints struct {
	MobileMax float64
	TabletMax float64
}

// Classify maps a viewport width to its device class.
func (b Breakpoints) Classify(width float64) DeviceClass {
	switch {
	case width < b.MobileMax:
		return Mobile
	case width < b.TabletMax:
		return Tablet
	default:
		return Desktop
	}
}
