// Package drawer implements an edge-anchored drawer that follows pointer
// drags and settles at configured snap points.
//
// A drawer drives three DOM targets: a container carrying the open state,
// an optional overlay whose opacity fades in as the drawer opens, and the
// content element whose transform positions the drawer. Positions are
// expressed as Y coordinates; see [Geometry] for how snap points resolve for
// a viewport and direction.
//
// Drags track the pointer one to one, with resistance past the most open
// position. On release [ResolveRelease] picks the resting point: close from
// the first point, skip one point on a fast flick, otherwise the nearest.
//
// The drawer never starts goroutines. Hosts dispatch DOM events and call
// [Drawer.Step] once per frame to run transition timers.
package drawer
