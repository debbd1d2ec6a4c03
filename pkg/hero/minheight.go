package hero

// DefaultMinHeight is used when no usable height token is configured.
const DefaultMinHeight = "80vh"

// ResolveMinHeight turns the height token and optional custom override into a
// CSS length. The result is never empty.
func ResolveMinHeight(token string, custom float64) string {
	switch normalize(token) {
	case "custom":
		if custom > 0 {
			return formatNumber(custom) + "vh"
		}
		return DefaultMinHeight
	case "60vh":
		return "60vh"
	case "100vh":
		return "100vh"
	default:
		return DefaultMinHeight
	}
}
