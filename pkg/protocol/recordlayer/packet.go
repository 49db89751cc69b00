// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"errors"
)

// Packet is the ordered list of records carried by one datagram.
type Packet struct {
	Records []*RecordLayer
}

// Marshal encodes every record back to back.
func (p *Packet) Marshal() ([]byte, error) {
	out := []byte{}
	for i, r := range p.Records {
		raw, err := r.Marshal()
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		out = append(out, raw...)
	}

	return out, nil
}

// Unmarshal decodes a datagram. Records that decode are kept even when
// others fail; the failures are returned joined, each as a *RecordError.
func (p *Packet) Unmarshal(data []byte) error {
	raws, unpackErr := UnpackDatagram(data)

	var errs []error
	p.Records = make([]*RecordLayer, 0, len(raws))
	for i, raw := range raws {
		r := &RecordLayer{}
		if err := r.Unmarshal(raw); err != nil {
			errs = append(errs, &RecordError{Index: i, Err: err})

			continue
		}
		p.Records = append(p.Records, r)
	}
	if unpackErr != nil {
		errs = append(errs, &RecordError{Index: len(raws), Err: unpackErr})
	}

	return errors.Join(errs...)
}
