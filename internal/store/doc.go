// Package store defines the job store contract consumed by the queue
// engine: an ordered list per queue plus a flat field map per job key.
//
// Two implementations exist:
//
//   - internal/store/redis (package redisstore) speaks to a Redis server
//     and maps the contract onto RPUSH/LPOP/LRANGE and HSET/HGETALL/DEL.
//   - internal/store/pebble (package pebblestore) embeds a Pebble database
//     for single-node deployments with no external dependencies.
//
// Durable state lives entirely behind this interface; the queue engine
// keeps none of its own.
package store
