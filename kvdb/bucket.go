// Copyright (c) 2026 The Stacks PoX developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kvdb

// Bucket provides a logical key namespace over a kv store.
type Bucket string

// NewGetPutter creates a namespaced view of the source store.
func (b Bucket) NewGetPutter(src GetPutter) GetPutter {
	return &bucketView{string(b), src}
}

type bucketView struct {
	prefix string
	src    GetPutter
}

func (v *bucketView) makeKey(key []byte) []byte {
	return append(append(make([]byte, 0, len(v.prefix)+len(key)), v.prefix...), key...)
}

func (v *bucketView) Get(key []byte) ([]byte, error) {
	return v.src.Get(v.makeKey(key))
}

func (v *bucketView) Has(key []byte) (bool, error) {
	return v.src.Has(v.makeKey(key))
}

func (v *bucketView) IsNotFound(err error) bool {
	return v.src.IsNotFound(err)
}

func (v *bucketView) Put(key, value []byte) error {
	return v.src.Put(v.makeKey(key), value)
}

func (v *bucketView) Delete(key []byte) error {
	return v.src.Delete(v.makeKey(key))
}

func (v *bucketView) NewBatch() Batch {
	return &bucketBatch{v.prefix, v.src.NewBatch()}
}

func (v *bucketView) NewIterator(r Range) Iterator {
	bucketRange := Range{
		From: append([]byte(v.prefix), r.From...),
	}
	if r.To != nil {
		bucketRange.To = append([]byte(v.prefix), r.To...)
	} else {
		// the next prefix in order bounds the bucket
		bucketRange.To = upperBound([]byte(v.prefix))
	}
	return &bucketIterator{len(v.prefix), v.src.NewIterator(bucketRange)}
}

func upperBound(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			bound := append([]byte{}, prefix[:i+1]...)
			bound[i]++
			return bound
		}
	}
	return nil
}

type bucketBatch struct {
	prefix string
	src    Batch
}

func (b *bucketBatch) makeKey(key []byte) []byte {
	return append(append(make([]byte, 0, len(b.prefix)+len(key)), b.prefix...), key...)
}

func (b *bucketBatch) Put(key, value []byte) error {
	return b.src.Put(b.makeKey(key), value)
}

func (b *bucketBatch) Delete(key []byte) error {
	return b.src.Delete(b.makeKey(key))
}

func (b *bucketBatch) NewBatch() Batch {
	return &bucketBatch{b.prefix, b.src.NewBatch()}
}

func (b *bucketBatch) Len() int {
	return b.src.Len()
}

func (b *bucketBatch) Write() error {
	return b.src.Write()
}

type bucketIterator struct {
	prefixLen int
	src       Iterator
}

func (i *bucketIterator) Next() bool    { return i.src.Next() }
func (i *bucketIterator) Release()      { i.src.Release() }
func (i *bucketIterator) Error() error  { return i.src.Error() }
func (i *bucketIterator) Key() []byte   { return i.src.Key()[i.prefixLen:] }
func (i *bucketIterator) Value() []byte { return i.src.Value() }
