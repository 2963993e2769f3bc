package search

import "go.mongodb.org/mongo-driver/bson"

// ToBSON renders the predicate tree in MongoDB query syntax. This is the
// only place store operators appear; everything upstream of it is testable
// without a live store.
func (q Query) ToBSON() bson.M {
	filter := bson.M{}
	for field, value := range q.Equality {
		filter[field] = value
	}
	for field, r := range q.Ranges {
		bounds := bson.M{}
		if r.Min != nil {
			bounds["$gte"] = *r.Min
		}
		if r.Max != nil {
			bounds["$lte"] = *r.Max
		}
		filter[field] = bounds
	}
	for field, values := range q.In {
		filter[field] = bson.M{"$in": values}
	}
	for _, field := range q.Exists {
		filter[field] = bson.M{"$exists": true}
	}
	if q.Search != "" {
		filter["$text"] = bson.M{"$search": q.Search}
	}
	// An empty $and is rejected by the store, so it is attached only when
	// there is at least one sub-predicate.
	if len(q.And) > 0 {
		and := make(bson.A, 0, len(q.And))
		for _, c := range q.And {
			and = append(and, c.toBSON())
		}
		filter["$and"] = and
	}
	return filter
}

func (c Condition) toBSON() bson.M {
	switch c.Op {
	case OpGte:
		return bson.M{c.Field: bson.M{"$gte": c.Value}}
	case OpLte:
		return bson.M{c.Field: bson.M{"$lte": c.Value}}
	default:
		return bson.M{c.Field: c.Value}
	}
}

// ToBSON renders the sort specification as an ordered document.
func (s SortSpec) ToBSON() bson.D {
	doc := make(bson.D, 0, len(s))
	for _, f := range s {
		dir := 1
		if f.Desc {
			dir = -1
		}
		doc = append(doc, bson.E{Key: f.Field, Value: dir})
	}
	return doc
}
