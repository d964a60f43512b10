package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so every operation inside an Execute callback shares the same connection.
type RepositoryFactory interface {
	// ProfileRepo returns a ProfileRepository bound to the current transaction.
	ProfileRepo() ProfileRepository

	// CredentialRepo returns a CredentialRepository bound to the current transaction.
	CredentialRepo() CredentialRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// PurchaseRepo returns a PurchaseRepository bound to the current transaction.
	PurchaseRepo() PurchaseRepository

	// TrackingRepo returns a TrackingRepository bound to the current transaction.
	TrackingRepo() TrackingRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// VehicleRepo returns a VehicleRepository bound to the current transaction.
	VehicleRepo() VehicleRepository
}
