// file: internal/task/cooperative.go
// version: 1.0.0
// guid: 1f3b5d7a-9c2e-4b4d-a6c8-0e2a4c6e8a0c

package task

// OperationType names the element-level edit a cooperative task proposes.
type OperationType string

const (
	ModifyElement OperationType = "modifyElement"
	RemoveElement OperationType = "removeElement"
)

// TagChange is a single tag edit inside a cooperative operation: setTags
// carries a key/value pair, unsetTags carries only the key.
type TagChange struct {
	Operation string // "setTags" or "unsetTags"
	Key       string
	Value     string
}

// TagChangeOperation is one element's worth of proposed tag edits, rendered
// into the cooperative work document MapRoulette expects.
type TagChangeOperation struct {
	Type      OperationType
	ElementID int64
	Changes   []TagChange
}

// operationDoc is the wire form: operationType plus a data object holding
// the element id and its nested operations.
type operationDoc struct {
	OperationType OperationType `json:"operationType"`
	Data          operationData `json:"data"`
}

type operationData struct {
	ID         int64      `json:"id"`
	Operations []nestedOp `json:"operations"`
}

type nestedOp struct {
	Operation string `json:"operation"`
	// Data is a {key: value} object for setTags and a [key] array for
	// unsetTags.
	Data any `json:"data"`
}

// document renders the operation into its wire form.
func (op TagChangeOperation) document() operationDoc {
	nested := make([]nestedOp, 0, len(op.Changes))
	for _, change := range op.Changes {
		switch change.Operation {
		case "unsetTags":
			nested = append(nested, nestedOp{
				Operation: "unsetTags",
				Data:      []string{change.Key},
			})
		case "setTags":
			nested = append(nested, nestedOp{
				Operation: "setTags",
				Data:      map[string]string{change.Key: change.Value},
			})
		}
	}
	return operationDoc{
		OperationType: op.Type,
		Data:          operationData{ID: op.ElementID, Operations: nested},
	}
}
