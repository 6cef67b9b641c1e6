package models

type ReflectionRequest struct {
	Transcript *string `json:"transcript"`
}

// Reflection is the outcome of one generate call. Err is set when the
// transcript was missing or the generator failed; Text otherwise.
type Reflection struct {
	Text string
	Err  string
}

func (r Reflection) Failed() bool {
	return r.Err != ""
}

// Body is the JSON shape returned to the client: {"response": ...} or
// {"error": ...}.
func (r Reflection) Body() map[string]string {
	if r.Failed() {
		return map[string]string{"error": r.Err}
	}
	return map[string]string{"response": r.Text}
}
