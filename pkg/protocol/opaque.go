// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

// Opaque is record content that is carried without interpretation: any
// record protected under a non-zero epoch, or a content type this
// package does not know.
type Opaque struct {
	Type ContentType
	Data []byte
}

// ContentType returns the ContentType the record was received with.
func (o Opaque) ContentType() ContentType {
	return o.Type
}

// Marshal returns a copy of the payload.
func (o *Opaque) Marshal() ([]byte, error) {
	return append([]byte{}, o.Data...), nil
}

// Unmarshal stores a copy of data. Type is left as set by the caller.
func (o *Opaque) Unmarshal(data []byte) error {
	o.Data = append([]byte{}, data...)

	return nil
}
