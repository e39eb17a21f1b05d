package gmail

import (
	"context"
	"os"

	// Packages
	google "golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	option "google.golang.org/api/option"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ServiceAccountOptions reads a service account key file and returns
// client options for read-only mailbox access. The mailbox must be
// delegated to the service account.
func ServiceAccountOptions(ctx context.Context, path, subject string) ([]option.ClientOption, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config, err := google.JWTConfigFromJSON(data, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, err
	}
	if subject != "" {
		config.Subject = subject
	}
	return []option.ClientOption{option.WithHTTPClient(config.Client(ctx))}, nil
}
