package shape

import (
	"encoding/json"
	"fmt"
)

// envelope wraps a shape with its kind tag for persistence.
type envelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Marshal encodes a shape as a kind-tagged JSON envelope.
func Marshal(s Shape) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Kind: s.ShapeKind().String(), Data: data})
}

// Unmarshal decodes a kind-tagged JSON envelope back into a shape value.
func Unmarshal(data []byte) (Shape, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	kind, ok := KindFromString(env.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown shape kind %q", env.Kind)
	}

	var s Shape
	var err error
	switch kind {
	case KindLine:
		var v Line
		err = json.Unmarshal(env.Data, &v)
		s = v
	case KindCircleArc:
		var v CircleArc
		err = json.Unmarshal(env.Data, &v)
		s = v
	case KindEllipse:
		var v Ellipse
		err = json.Unmarshal(env.Data, &v)
		s = v
	case KindEllipseArc:
		var v EllipseArc
		err = json.Unmarshal(env.Data, &v)
		s = v
	case KindBezier:
		var v Bezier
		err = json.Unmarshal(env.Data, &v)
		s = v
	case KindRect:
		var v Rect
		err = json.Unmarshal(env.Data, &v)
		s = v
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s shape: %w", env.Kind, err)
	}
	return s, nil
}

// List is a slice of shapes that round-trips through kind-tagged JSON.
type List []Shape

func (l List) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, len(l))
	for i, s := range l {
		data, err := Marshal(s)
		if err != nil {
			return nil, err
		}
		raw[i] = data
	}
	return json.Marshal(raw)
}

func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	shapes := make(List, 0, len(raw))
	for _, r := range raw {
		s, err := Unmarshal(r)
		if err != nil {
			return err
		}
		shapes = append(shapes, s)
	}
	*l = shapes
	return nil
}
