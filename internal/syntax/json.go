package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the expression to w.
func FprintJSON(w io.Writer, x Expr) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(x))
}

func toJSON(x Expr) interface{} {
	if x == nil {
		return nil
	}

	switch n := x.(type) {
	case *IntLit:
		return map[string]interface{}{
			"type":  "IntLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *Operation:
		return map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *Negation:
		return map[string]interface{}{
			"type": "Negation",
			"pos":  n.pos.String(),
			"x":    toJSON(n.X),
		}
	}

	return map[string]interface{}{"type": "Unknown"}
}
