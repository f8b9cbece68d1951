package application

import "errors"

var (
	// auth
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role specified")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// opportunities
	ErrFunderNameRequired = errors.New("funder organization name could not be determined")
	ErrInvalidDeadline    = errors.New("invalid application deadline, expected YYYY-MM-DD")
	ErrHasSubmissions     = errors.New("opportunity has integrated applications and cannot be deleted")

	// submissions
	ErrNotIntegrated        = errors.New("this opportunity does not accept integrated applications")
	ErrProfileRequired      = errors.New("ngo profile must be created before submitting applications")
	ErrDuplicateApplication = errors.New("an application for this opportunity has already been submitted")
	ErrInvalidStatus        = errors.New("invalid application status")

	// ownership / roles
	ErrNotOwner = errors.New("access denied")

	// admin
	ErrNotNgo          = errors.New("user is not an NGO admin")
	ErrAlreadyVerified = errors.New("ngo is already verified")
	ErrSelfUpdate      = errors.New("admins cannot modify their own account via this endpoint")

	// saved searches
	ErrInvalidSearchType   = errors.New("searchType must be 'funding' or 'discounts'")
	ErrSearchCriteriaEmpty = errors.New("keywords or filters are required to save a search")

	// providers / discounts
	ErrProviderNameRequired = errors.New("provider company name could not be determined")
	ErrInvalidExpiryDate    = errors.New("invalid expiry date, expected YYYY-MM-DD")
)
