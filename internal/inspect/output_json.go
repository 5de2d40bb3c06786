package inspect

import "encoding/json"

// RenderJSON renders reports as indented JSON. A single report is
// emitted as an object, several as an array, matching how the text
// renderer concatenates them.
func RenderJSON(reports []Report) string {
	var payload any = reports
	if len(reports) == 1 {
		payload = reports[0]
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		// Report contains only strings, ints, and bools.
		panic(err)
	}
	return string(data)
}
