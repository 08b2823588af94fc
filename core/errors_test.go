package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationError_Error(t *testing.T) {
	err := &RegistrationError{Namespace: "Settings", Reason: "action name must not be empty"}
	assert.Contains(t, err.Error(), "Settings")

	withAction := &RegistrationError{Namespace: "Settings", Action: "getUser", Reason: "nil handler"}
	assert.Contains(t, withAction.Error(), "getUser")
}

func TestLifecycleError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &LifecycleError{Key: "store", Hook: "init", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store")
	assert.Contains(t, err.Error(), "init")
}

func TestResultHelpers(t *testing.T) {
	ok := OK(map[string]any{"theme": "dark"})
	assert.Equal(t, StatusOK, ok.Status)
	assert.False(t, ok.Failed())

	fail := Failf(StatusInternalError, "boom: %d", 7)
	assert.True(t, fail.Failed())
	assert.Equal(t, "boom: 7", fail.Message)

	var notReady error = &NotReadyError{Key: "cache"}
	var target *NotReadyError
	assert.True(t, errors.As(notReady, &target))
}
