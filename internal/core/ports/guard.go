package ports

// PrivilegeGuard gates the pipeline on the elevated privilege the
// maintenance operations require.
//
//go:generate mockgen -source=guard.go -destination=mocks/mock_guard.go -package=mocks
type PrivilegeGuard interface {
	// Check reads the effective privilege level exactly once and returns
	// domain.ErrPermissionDenied if it is insufficient.
	Check() error
}
