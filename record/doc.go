/*
Package record implements live record instances with snapshot-based dirty
tracking and the key-validated persistence protocol.

A Record binds a shared schema.Definition to one item's worth of attribute
values. Construction leaves the clean snapshot empty, so every provided value
is dirty relative to "unset":

	rec, err := record.New(def, map[string]any{
	    "id":   1,
	    "date": "2015-12-14",
	    "body": "Hello!",
	})
	rec.Changed()         // true
	rec.DirtyNames()      // [id date body]

Dirtiness is computed against the snapshot by value equality, never stored,
with one exception: MarkDirty force-flags an attribute that was mutated in
place. The forced flag deliberately does not refresh the snapshot, so Was
keeps answering with the last value the store acknowledged:

	rec.MarkDirty("body")
	rec.Dirty("body")     // true
	rec.Was("body")       // value from the last save/load, not the mutation

Rollback restores named attributes (or all of them) to the snapshot;
MarkClean re-baselines the snapshot from current values and is invoked
automatically when a save or load is acknowledged.

Persistence goes through a Store, which pairs a definition with a
datastore.Client:

	posts := record.NewStore(client, def)
	err := posts.Save(ctx, rec)                               // put + MarkClean
	found, err := posts.Find(ctx, map[string]any{"id": 1, "date": "2015-12-14"})
	err = posts.Reload(ctx, rec)                              // NotFound if gone
	err = posts.Delete(ctx, rec)

Every operation resolves and validates key attributes before any network
call; a KeyMissingError means the client was never invoked. Store-side
errors propagate unchanged.

Records are single-owner: concurrent mutation of one instance must be
serialized by the caller. The definition they share is immutable and safe
for concurrent reads.
*/
package record
