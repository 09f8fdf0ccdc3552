package net_structures

import "encoding/json"

// TextComponent is a chat/disconnect-reason payload. Limbo only ever sends
// flat, unstyled text, so it is modelled as the simplest legal chat
// component JSON object (`{"text":"..."}`) and encoded as a length-prefixed
// String, which is how every protocol version in the supported range
// accepts a Text field up through the 1.20.3 NBT-text change; see DESIGN.md.
type TextComponent struct {
	Text string
}

func NewTextComponent(text string) TextComponent {
	return TextComponent{Text: text}
}

func (t TextComponent) ToBytes() (ByteArray, error) {
	raw, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: t.Text})
	if err != nil {
		return nil, err
	}
	return String(raw).ToBytes()
}

func (t *TextComponent) FromBytes(data ByteArray) (int, error) {
	var s String
	n, err := s.FromBytes(data)
	if err != nil {
		return 0, err
	}
	var decoded struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(s), &decoded); err == nil {
		t.Text = decoded.Text
	} else {
		t.Text = string(s)
	}
	return n, nil
}
