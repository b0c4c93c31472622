package auth

// Permission names a single boolean capability in the role permission table.
type Permission string

// Permission keys. Every role resolves every key; lookups for keys outside
// this set fail closed.
const (
	CanViewAllOrders   Permission = "canViewAllOrders"
	CanCreateOrder     Permission = "canCreateOrder"
	CanConfirmOrder    Permission = "canConfirmOrder"
	CanShipOrder       Permission = "canShipOrder"
	CanCancelOrder     Permission = "canCancelOrder"
	CanMarkDelivered   Permission = "canMarkDelivered"
	CanViewRevenue     Permission = "canViewRevenue"
	CanExportCsv       Permission = "canExportCsv"
	CanViewTrackingMap Permission = "canViewTrackingMap"
	CanCompareCarriers Permission = "canCompareCarriers"
	CanBookCarrier     Permission = "canBookCarrier"
	CanCalculateRoutes Permission = "canCalculateRoutes"
	CanViewReports     Permission = "canViewReports"
	CanManageSettings  Permission = "canManageSettings"
	CanViewRoleMatrix  Permission = "canViewRoleMatrix"
)

// PermissionSet is the full capability record for one role.
// Every role has a value for every permission key; a key absent from the
// record is denied, never allowed.
type PermissionSet struct {
	canViewAllOrders   bool
	canCreateOrder     bool
	canConfirmOrder    bool
	canShipOrder       bool
	canCancelOrder     bool
	canMarkDelivered   bool
	canViewRevenue     bool
	canExportCsv       bool
	canViewTrackingMap bool
	canCompareCarriers bool
	canBookCarrier     bool
	canCalculateRoutes bool
	canViewReports     bool
	canManageSettings  bool
	canViewRoleMatrix  bool
}

// Has reports whether the set grants the named permission.
// Unknown permission keys are denied.
func (s PermissionSet) Has(permission Permission) bool {
	switch permission {
	case CanViewAllOrders:
		return s.canViewAllOrders
	case CanCreateOrder:
		return s.canCreateOrder
	case CanConfirmOrder:
		return s.canConfirmOrder
	case CanShipOrder:
		return s.canShipOrder
	case CanCancelOrder:
		return s.canCancelOrder
	case CanMarkDelivered:
		return s.canMarkDelivered
	case CanViewRevenue:
		return s.canViewRevenue
	case CanExportCsv:
		return s.canExportCsv
	case CanViewTrackingMap:
		return s.canViewTrackingMap
	case CanCompareCarriers:
		return s.canCompareCarriers
	case CanBookCarrier:
		return s.canBookCarrier
	case CanCalculateRoutes:
		return s.canCalculateRoutes
	case CanViewReports:
		return s.canViewReports
	case CanManageSettings:
		return s.canManageSettings
	case CanViewRoleMatrix:
		return s.canViewRoleMatrix
	default:
		return false
	}
}

// rolePermissions is the static process-wide permission table.
// It is never mutated at runtime.
func rolePermissions() map[Role]PermissionSet {
	return map[Role]PermissionSet{
		Admin: {
			canViewAllOrders:   true,
			canCreateOrder:     true,
			canConfirmOrder:    true,
			canShipOrder:       true,
			canCancelOrder:     true,
			canMarkDelivered:   true,
			canViewRevenue:     true,
			canExportCsv:       true,
			canViewTrackingMap: true,
			canCompareCarriers: true,
			canBookCarrier:     true,
			canCalculateRoutes: true,
			canViewReports:     true,
			canManageSettings:  true,
			canViewRoleMatrix:  true,
		},
		Dispatcher: {
			canViewAllOrders:   true,
			canCreateOrder:     true,
			canConfirmOrder:    true,
			canShipOrder:       true,
			canCancelOrder:     true,
			canViewRevenue:     true,
			canExportCsv:       true,
			canViewTrackingMap: true,
			canCompareCarriers: true,
			canBookCarrier:     true,
			canCalculateRoutes: true,
			canViewReports:     true,
			canManageSettings:  true,
		},
		Driver: {
			canMarkDelivered:   true,
			canViewTrackingMap: true,
			canManageSettings:  true,
		},
		Viewer: {
			canViewTrackingMap: true,
			canManageSettings:  true,
		},
	}
}

// HasPermission reports whether the given role holds the named permission.
// This is the single source of truth consulted by every gated operation.
// It is a pure lookup and fails closed: unknown roles and unknown permission
// keys are denied, and the function never panics.
func HasPermission(role Role, permission Permission) bool {
	set, ok := rolePermissions()[role]
	if !ok {
		return false
	}
	return set.Has(permission)
}

// Permissions returns the full permission set for a role.
// Unknown roles yield an all-denied set.
func Permissions(role Role) PermissionSet {
	return rolePermissions()[role]
}
