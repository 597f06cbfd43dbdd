package openstack

import (
	"fmt"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"

	"github.com/imamik/ospurge/internal/purge"
)

// IsNotFound checks if an error is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	return gophercloud.ResponseCodeIs(err, http.StatusNotFound)
}

// IsConflict checks if an error is an HTTP 409 from the API.
func IsConflict(err error) bool {
	return gophercloud.ResponseCodeIs(err, http.StatusConflict)
}

// classify marks conflicts with purge.ErrConflict.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if IsConflict(err) {
		return fmt.Errorf("%w: %w", purge.ErrConflict, err)
	}
	return err
}

// deleted classifies a delete error. Missing resources count as deleted.
func deleted(err error) error {
	if IsNotFound(err) {
		return nil
	}
	return classify(err)
}
