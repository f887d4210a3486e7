// Package scenepool recycles expensive scene instances that carry a fresh
// info payload on every acquisition.
//
// A [Pool] is parameterized on two generic types:
//   - T is the instance type. It embeds [Object] and implements ResetValues.
//   - INFO is the payload given to Generate, readable through Info while the
//     instance is in state [Got].
//
// Instead of creating and destroying instances by hand:
//
//	b := env.Create()
//	b.speed = info.Speed
//	// use the bullet
//	env.Destroy(b)
//
// We let the pool place, show, set up and later scrub them:
//
//	pool, err := scenepool.New[*Bullet, *BulletInfo](env,
//	  scenepool.WithInitialSize(16),
//	  scenepool.WithMaxSize(64),
//	  scenepool.WithCollectionCheck(true),
//	)
//
//	b := pool.Generate(&BulletInfo{Speed: 12}) // state Got, Generated() ran
//	b.Release(b)                               // hidden, state Released, ResetValues() ran
//
// Placement, visibility and destruction are delegated to an [Environment]
// supplied by the host; package scene provides an in-memory one.
//
// Faults are reported through the zap logger given with [WithLogger] and the
// [Recorder] given with [WithRecorder]; they are never returned to the caller.
package scenepool
