// Package gate decides whether a signed-in user may act on a resource type
// of the store. A role grants "resource:action" pairs; rules registered per
// resource type then judge the loaded record, typically on ownership.
package gate

// Action is the operation requested on a resource type.
type Action string

const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)
