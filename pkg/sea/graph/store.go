package graph

import (
	"encoding/binary"

	"github.com/DataDog/zstd"
	"github.com/cockroachdb/pebble"
	kbinary "github.com/kelindar/binary"

	"github.com/dynop/routing-service/pkg/server"
)

// nodeRecord is the persisted form of a single graph node: its
// coordinate and adjacency list, encoded with kelindar/binary and
// compressed with zstd exactly as pkg/kv/zstd_compression.go encodes
// street records.
type nodeRecord struct {
	Lat  float64
	Lon  float64
	Adj  []Edge
}

func encodeNode(rec nodeRecord) ([]byte, error) {
	encoded, err := kbinary.Marshal(rec)
	if err != nil {
		return nil, err
	}
	return zstd.Compress(nil, encoded)
}

func decodeNode(compressed []byte) (nodeRecord, error) {
	var rec nodeRecord
	raw, err := zstd.Decompress(nil, compressed)
	if err != nil {
		return rec, err
	}
	if err := kbinary.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func nodeKey(idx int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(idx))
	return key
}

// Store persists a SeaGraph into a pebble KV store under dir, keyed
// by node index.
func Store(dir string, g *SeaGraph) error {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return server.WrapErrorf(err, server.ErrIO, "opening sea graph store %s", dir)
	}
	defer db.Close()

	for i, node := range g.Nodes {
		rec := nodeRecord{Lat: node.Lat, Lon: node.Lon, Adj: g.Adjacency[i]}
		val, err := encodeNode(rec)
		if err != nil {
			return server.WrapErrorf(err, server.ErrIO, "encoding node %d", i)
		}
		if err := db.Set(nodeKey(i), val, pebble.Sync); err != nil {
			return server.WrapErrorf(err, server.ErrIO, "writing node %d", i)
		}
	}

	return nil
}

// Load reads a persisted sea graph back into memory from dir, in
// node-index order.
func Load(dir string) (*SeaGraph, error) {
	db, err := pebble.Open(dir, &pebble.Options{ReadOnly: true})
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrIO, "opening sea graph store %s", dir)
	}
	defer db.Close()

	var nodes []Node
	var adjacency [][]Edge

	iter, err := db.NewIter(nil)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrIO, "iterating sea graph store %s", dir)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeNode(iter.Value())
		if err != nil {
			return nil, server.WrapErrorf(err, server.ErrIO, "decoding sea graph record")
		}
		nodes = append(nodes, Node{Lat: rec.Lat, Lon: rec.Lon})
		adjacency = append(adjacency, rec.Adj)
	}
	if err := iter.Error(); err != nil {
		return nil, server.WrapErrorf(err, server.ErrIO, "iterating sea graph store %s", dir)
	}

	if len(nodes) != len(adjacency) {
		return nil, server.WrapErrorf(nil, server.ErrIO, "sea graph store %s is inconsistent", dir)
	}

	return &SeaGraph{Nodes: nodes, Adjacency: adjacency}, nil
}
