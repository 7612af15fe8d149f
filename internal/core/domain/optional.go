package domain

import "encoding/json"

// Optional is a patch field that distinguishes "absent from the payload" from
// "present with an empty value". A plain *string cannot: both a missing key
// and an explicit null decode to nil, and the update contract treats them
// differently (absent keeps the prior value, present-but-empty clears it).
type Optional struct {
	Set   bool
	Value string
}

// UnmarshalJSON is only invoked when the key is present, which is what flips
// Set. JSON null decodes as the empty value.
func (o *Optional) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Ptr returns the value as a nullable pointer: nil when the field was set to
// an empty value, the value otherwise. Only meaningful when Set is true.
func (o Optional) Ptr() *string {
	if o.Value == "" {
		return nil
	}
	v := o.Value
	return &v
}
