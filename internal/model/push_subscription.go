package model

// PushSubscription holds the information for a browser push subscription,
// tied to the dashboard user that registered it.
type PushSubscription struct {
	Endpoint string `json:"endpoint"`
	P256DH   string `json:"p256dh"`
	Auth     string `json:"auth"`
	UserID   string `json:"userId"`
}
