package ports

// Browser opens URLs for the user.
//
//go:generate mockgen -source=browser.go -destination=mocks/mock_browser.go -package=mocks
type Browser interface {
	Open(url string) error
}
