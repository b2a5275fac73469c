package usecase

// Action identifies an inbound post operation for authorization purposes.
type Action string

// The post actions covered by the authorization policy.
const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionSearch Action = "search"
)

// policy describes what an action demands of the caller.
type policy struct {
	requiresAuth  bool
	requiresOwner bool
}

// policies is the single place authentication and ownership requirements are
// declared. Viewing a detail page requires login while list and search do
// not; the asymmetry is inherited behavior, kept deliberately.
var policies = map[Action]policy{
	ActionList:   {requiresAuth: false, requiresOwner: false},
	ActionView:   {requiresAuth: true, requiresOwner: false},
	ActionCreate: {requiresAuth: true, requiresOwner: false},
	ActionEdit:   {requiresAuth: true, requiresOwner: true},
	ActionDelete: {requiresAuth: true, requiresOwner: true},
	ActionSearch: {requiresAuth: false, requiresOwner: false},
}
