package etherscan

import "strconv"

// Network identifies a supported chain. Each network has a fixed
// explorer base URL and chain id. The zero value is Mainnet.
type Network int

const (
	Mainnet Network = iota
	Goerli
	Sepolia
	BinanceSmartChain
	Polygon
	Fantom
	Arbitrum
	Optimism
)

// BaseURL returns the explorer API base URL for the network.
func (n Network) BaseURL() string {
	switch n {
	case Goerli:
		return "https://api-goerli.etherscan.io/api"
	case Sepolia:
		return "https://api-sepolia.etherscan.io/api"
	case BinanceSmartChain:
		return "https://api.bscscan.com/api"
	case Polygon:
		return "https://api.polygonscan.com/api"
	case Fantom:
		return "https://api.ftmscan.com/api"
	case Arbitrum:
		return "https://api.arbiscan.io/api"
	case Optimism:
		return "https://api-optimistic.etherscan.io/api"
	default:
		return "https://api.etherscan.io/api"
	}
}

// Name returns the human-readable network name.
func (n Network) Name() string {
	switch n {
	case Goerli:
		return "Goerli Testnet"
	case Sepolia:
		return "Sepolia Testnet"
	case BinanceSmartChain:
		return "Binance Smart Chain"
	case Polygon:
		return "Polygon"
	case Fantom:
		return "Fantom"
	case Arbitrum:
		return "Arbitrum"
	case Optimism:
		return "Optimism"
	default:
		return "Ethereum Mainnet"
	}
}

// ChainID returns the numeric chain id of the network.
func (n Network) ChainID() uint64 {
	switch n {
	case Goerli:
		return 5
	case Sepolia:
		return 11155111
	case BinanceSmartChain:
		return 56
	case Polygon:
		return 137
	case Fantom:
		return 250
	case Arbitrum:
		return 42161
	case Optimism:
		return 10
	default:
		return 1
	}
}

func (n Network) String() string {
	return n.Name()
}

// Sort is the result ordering for list endpoints.
type Sort string

const (
	SortAscending  Sort = "asc"
	SortDescending Sort = "desc"
)

// Tag is a block selector for balance lookups: a symbolic tag or a
// concrete block number.
type Tag string

const (
	TagLatest   Tag = "latest"
	TagEarliest Tag = "earliest"
	TagPending  Tag = "pending"
)

// BlockTag returns a Tag selecting a concrete block number.
func BlockTag(number uint64) Tag {
	return Tag(strconv.FormatUint(number, 10))
}

// queryParam is one key/value pair of the request query string. Params
// are carried as an ordered slice, not a map, so serialization is
// deterministic.
type queryParam struct {
	key   string
	value string
}

// Pagination accumulates the optional paging and filter parameters
// shared by list endpoints. The zero value contributes no parameters.
// The with-style setters return a modified copy, so partially
// configured values can be reused safely.
type Pagination struct {
	page       *uint32
	offset     *uint32
	startBlock *uint64
	endBlock   *uint64
	sort       *Sort
}

// Page sets the page number, starting from 1.
func (p Pagination) Page(page uint32) Pagination {
	p.page = &page
	return p
}

// Offset sets the number of results per page (max 10000 upstream).
func (p Pagination) Offset(offset uint32) Pagination {
	p.offset = &offset
	return p
}

// StartBlock sets the inclusive starting block number.
func (p Pagination) StartBlock(block uint64) Pagination {
	p.startBlock = &block
	return p
}

// EndBlock sets the inclusive ending block number.
func (p Pagination) EndBlock(block uint64) Pagination {
	p.endBlock = &block
	return p
}

// Sort sets the result ordering.
func (p Pagination) Sort(sort Sort) Pagination {
	p.sort = &sort
	return p
}

// BlockRange sets both block bounds at once.
func (p Pagination) BlockRange(start, end uint64) Pagination {
	p.startBlock = &start
	p.endBlock = &end
	return p
}

// queryParams renders the explicitly set fields in canonical order:
// page, offset, startblock, endblock, sort.
func (p Pagination) queryParams() []queryParam {
	var params []queryParam
	if p.page != nil {
		params = append(params, queryParam{"page", strconv.FormatUint(uint64(*p.page), 10)})
	}
	if p.offset != nil {
		params = append(params, queryParam{"offset", strconv.FormatUint(uint64(*p.offset), 10)})
	}
	if p.startBlock != nil {
		params = append(params, queryParam{"startblock", strconv.FormatUint(*p.startBlock, 10)})
	}
	if p.endBlock != nil {
		params = append(params, queryParam{"endblock", strconv.FormatUint(*p.endBlock, 10)})
	}
	if p.sort != nil {
		params = append(params, queryParam{"sort", string(*p.sort)})
	}
	return params
}
