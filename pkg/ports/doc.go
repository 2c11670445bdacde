// Package ports defines the driven-side interfaces of the library:
// persistence of serialized corpus trees and metric sinks for campaign
// accounting. Adapters live in pkg/adapters; pkg/campaign depends only on
// the interfaces here.
package ports
