package lifecycle

import (
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

// librarySpec is the creation request for a subscribed content library.
type librarySpec struct {
	CreateSpec libraryCreateSpec `json:"create_spec"`
}

type libraryCreateSpec struct {
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Type             string           `json:"type"`
	SubscriptionInfo subscriptionInfo `json:"subscription_info"`
	StorageBackings  []any            `json:"storage_backings"`
}

type subscriptionInfo struct {
	SubscriptionURL      string `json:"subscription_url"`
	AuthenticationMethod string `json:"authentication_method"`
	AutomaticSyncEnabled bool   `json:"automatic_sync_enabled"`
	OnDemand             bool   `json:"on_demand"`
}

// registerDepot registers a UMDS depot URL as a subscribed content library
// source. The returned error is informational: the depot frequently already
// exists (409) and callers treat registration as best effort.
func registerDepot(client *vsphere.Client, depotURL string) error {
	spec := librarySpec{
		CreateSpec: libraryCreateSpec{
			Name:        "UMDS Patch Depot",
			Description: "Local UMDS depot for Lifecycle Manager patches",
			Type:        "SUBSCRIBED",
			SubscriptionInfo: subscriptionInfo{
				SubscriptionURL:      depotURL,
				AuthenticationMethod: "NONE",
				AutomaticSyncEnabled: true,
				OnDemand:             false,
			},
			StorageBackings: []any{},
		},
	}

	_, err := client.Post(subscribedLibraryPath, spec)
	return err
}
