// Package etherscan is a typed client for the Etherscan family of
// blockchain-explorer HTTP APIs (account balances, transaction history,
// token transfers, contract metadata).
//
// A client is built from a ClientConfig and is immutable after
// construction, so it is safe to share across goroutines:
//
//	client, err := etherscan.NewClient(etherscan.ClientConfig{
//		APIKey:  os.Getenv("ETHERSCAN_API_KEY"),
//		Network: etherscan.Mainnet,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	balance, err := client.Accounts().Balance(ctx, "0x742d35cc6634c0532925a3b8d19389c4d5e1e4a6")
//
// List endpoints return query builders that accumulate pagination and
// filter parameters before a single terminal Do call:
//
//	txs, err := client.Accounts().
//		Transactions("0x742d35cc6634c0532925a3b8d19389c4d5e1e4a6").
//		BlockRange(19_000_000, 19_100_000).
//		Sort(etherscan.SortAscending).
//		Do(ctx)
//
// All failures are reported as *Error values carrying an ErrorKind, so
// callers can classify configuration, validation, transport, HTTP, API
// and parsing failures with errors.As. The library never retries on its
// own; Error.Retryable reports whether a retry by the caller could help.
package etherscan

// Version of the library, reported in the default User-Agent header.
const Version = "0.1.0"
