package services

// ServiceContainer holds all service interfaces needed by the handlers.
type ServiceContainer struct {
	Product ProductSvcFacade
	User    UserSvcFacade
}
