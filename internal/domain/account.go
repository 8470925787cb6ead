package domain

// Account identifies one messenger session driven by the bot.
type Account struct {
	SessionName string
	// Proxy is a proxy URL, empty when the account connects directly.
	Proxy string
}

// Peer is a resolved messenger peer that can be addressed by later calls.
type Peer struct {
	ID         int64
	AccessHash int64
}

// WebViewRequest asks the messenger to open a bot's web app.
type WebViewRequest struct {
	Peer         Peer
	AppShortName string
	Platform     string
	StartParam   string
}

type MessengerUser struct {
	ID       int64
	Username string
}
