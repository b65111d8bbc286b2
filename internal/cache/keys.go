package cache

import "strconv"

// UsersKey caches the full user listing.
const UsersKey = "users"

// UserKey caches a single user lookup, including lookups that found nothing.
func UserKey(id int32) string {
	return UsersKey + ":" + strconv.FormatInt(int64(id), 10)
}
