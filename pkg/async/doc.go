// Package async provides a small generic Future for results that arrive later.
//
// A Future is obtained either from Async, which runs a function in its own
// goroutine, or from NewPromise, which hands back resolve and reject functions
// for code that completes through callbacks. The first settlement wins; later
// calls are ignored.
//
// Callers wait with Await, AwaitContext or AwaitWithTimeout, or poll with
// IsComplete.
//
// # Usage
//
//	future, resolve, reject := async.NewPromise[string]()
//	startJob(func(out string, err error) {
//	    if err != nil {
//	        reject(err)
//	        return
//	    }
//	    resolve(out)
//	})
//
//	res, err := future.AwaitContext(ctx)
//
// # Error Handling
//
// Futures carry the error given to reject or returned by the Async callback.
// AwaitWithTimeout returns ErrTimeout and AwaitContext the context error when
// the wait ends first; the underlying work keeps running.
package async
