package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// (user_id, username) is unique, so removing a friend must free the index
// slot for a later re-add. A soft-delete column would keep the removed row
// in the table and make the re-add fail the unique constraint.
func TestFriendRemovalFreesUniqueIndex(t *testing.T) {
	_, hasDeletedAt := reflect.TypeOf(Friend{}).FieldByName("DeletedAt")
	assert.False(t, hasDeletedAt, "friend rows must be hard deleted")
}
