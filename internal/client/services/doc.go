// Package services contains the application services of the shop client.
//
// AuthService drives the session lifecycle against the remote API:
//
//	Unauthenticated --register/login--> Authenticated
//	Authenticated --logout/deactivate/failed verification--> Unauthenticated
//
// Every operation calls the API first and touches the session store only
// after a successful response. The one exception is Logout, which clears the
// local session even when the server call fails.
package services
