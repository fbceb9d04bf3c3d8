/*
Package campussdk provides a client SDK for the university activities backend.

# Overview

The package is organized in three layers:

  - Session store (package sessionstore): durable token and profile storage
  - Gateway (SDKClient.Do): the single place HTTP requests are issued
  - Domain endpoints: typed methods on SDKClient, one per backend route

Create a client from the host the user reached the front end on. The backend
is always on port 8080 of that host, or of localhost for loopback hosts:

	store := memory.NewStore()
	client := campussdk.NewSDKClient("192.168.1.20", store)
	// client.BaseURL == "http://192.168.1.20:8080/api"

# Result Envelopes

Domain endpoints never return errors. Every method returns a result struct
embedding Envelope, and failure is reported as data:

	res := client.MyApplications(ctx)
	if !res.Success {
		fmt.Println(res.Message) // localized text for display
	}
	for _, app := range res.Applications { // never nil
		fmt.Println(app.ActivityType, app.Status)
	}

Envelope.Kind tells a failed call apart from a backend that genuinely had
no data. A 2xx response with "success": false is reported as
KindRequestFailed.

# Error Kinds

The Gateway classifies failures into four kinds:

  - KindBackendUnavailable: the host answered with something other than JSON
  - KindBackendUnreachable: no response at all (connection refused, DNS)
  - KindSessionExpired: a 401 whose message mentions the token
  - KindRequestFailed: any other non-2xx status

SDKClient.Do returns these as *Error values that match the package
sentinels with errors.Is:

	_, err := client.Do(ctx, http.MethodGet, "/activities", nil, nil)
	if errors.Is(err, campussdk.ErrSessionExpired) {
		// The session has already been cleared.
	}

# Sessions

Login stores the token and profile as a single write; Logout and session
expiry clear both. No other operation writes to the store. A profile left
in storage without a token is treated as signed out:

	res := client.Login(ctx, campussdk.Credentials{
		Username: "u1",
		Password: "p1",
		Role:     campussdk.RoleStudent,
	})
	if res.Success {
		user := client.CurrentUser(ctx) // same fullName and role as the server sent
	}

Views gate on role with SessionManager.Require:

	session, err := client.Sessions().Require(ctx, campussdk.RoleEmployee)
	if errors.Is(err, campussdk.ErrNotSignedIn) {
		// Send the user back to the login screen.
	}

# Enumerations

Application and request statuses, registration statuses and roles are
closed enumerations. The backend's localized literals ("قيد الانتظار",
"مقبول", "مرفوض" and so on) appear only on the wire; decoding an unknown
literal fails the call with KindBackendUnavailable.

# Concurrency

SDKClient is safe for concurrent use, but the session lifecycle assumes
callers issue endpoint calls one at a time. No client timeout is set and no
call is retried; use the context for cancellation.
*/
package campussdk
