package quality

// templateStep is one row of a routing template.
type templateStep struct {
	op   string
	desc string
}

// Routing templates by item category. Categories without a template of their
// own get the short receiving/cladding/inspection sequence.
var routingTemplates = map[string][]templateStep{
	"Cladded Pipe": {
		{"OP 10", "CUT TO LENGTH"},
		{"OP 20", "PRE-MACHINING (if required)"},
		{"OP 30", "INTERNAL BLASTING"},
		{"OP 40", "THICKNESS SURVEY - BEFORE WELDOVERLAY"},
		{"OP 50", "WELDOVERLAY (CLADDING)"},
		{"OP 120", "LPT & VT, PMI"},
		{"OP 130", "RT"},
		{"OP 140", "UT"},
		{"OP 150", "BEVELING"},
		{"OP 230", "FINAL DIMENSION"},
		{"OP 240", "HYDROTEST / SURFACE TREATMENT"},
		{"OP 270", "MARKING & PACKING"},
		{"OP 280", "PRE-DELIVERY INSPECTION"},
	},
	"Flange": {
		{"OP 20", "PRE-MACHINING (if required)"},
		{"OP 30", "INTERNAL BLASTING"},
		{"OP 40", "THICKNESS SURVEY"},
		{"OP 50", "WELDOVERLAY (CLADDING)"},
		{"OP 80", "FINAL MACHINING"},
		{"OP 120", "LPT & VT, PMI"},
		{"OP 230", "FINAL DIMENSION"},
		{"OP 270", "MARKING & PACKING"},
	},
}

var defaultTemplate = []templateStep{
	{"OP 10", "RECEIVING INSPECTION"},
	{"OP 50", "WELDOVERLAY (CLADDING)"},
	{"OP 120", "LPT & VT, PMI"},
	{"OP 230", "FINAL DIMENSION"},
}

// templateFor returns the routing template for an item category.
func templateFor(category string) []templateStep {
	if tpl, ok := routingTemplates[category]; ok {
		return tpl
	}
	return defaultTemplate
}
