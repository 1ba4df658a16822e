// Package pagination turns a "fetch page N" function into a lazy,
// potentially unbounded sequence of pages or of individual items.
//
// Every paginated API operation composes with exactly this driver, so
// pagination semantics are uniform across the whole client surface:
// strictly sequential fetches, pages in index order, natural termination
// on the first empty page, and a one-way latch to finished after the
// first error.
//
// Example usage:
//
//	stream := pagination.NewPageStream(func(ctx context.Context, page request.PageIndex) ([]ShortUser, error) {
//		return client.SearchUsersPage(ctx, name, page)
//	})
//
//	for page, err := range stream.Pages(ctx) {
//		if err != nil {
//			return err
//		}
//		// process one page
//	}
//
// Flatten gives the item-level view:
//
//	for user, err := range stream.Flatten().Items(ctx) {
//		...
//	}
package pagination
