package controllers

import (
	"net/http"

	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/utils"
)

func deviceIDFrom(r *http.Request) string {
	if deviceID, ok := r.Context().Value(constvars.CONTEXT_DEVICE_ID_KEY).(string); ok {
		return deviceID
	}
	return ""
}

// portalFromQuery reads the portal hint off the query string; anything
// unknown degrades to the patient portal.
func portalFromQuery(r *http.Request) string {
	portal := r.URL.Query().Get("portal")
	if utils.IsKnownPortal(portal) {
		return portal
	}
	return constvars.PortalPatient
}
