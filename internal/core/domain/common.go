package domain

// OwnerID identifies the tenant (store) a record belongs to. Every repository
// operation takes an OwnerID and scopes its queries with it; using a distinct
// type rather than a bare string makes it impossible to forget the scope or to
// pass an arbitrary identifier in its place. Handlers mint OwnerIDs from the
// authenticated user, nowhere else.
type OwnerID string

func (o OwnerID) String() string {
	return string(o)
}
