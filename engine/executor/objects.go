package executor

import (
	"sort"

	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/proto"
	"github.com/tusgame/tusworld/engine/resource"
	"github.com/tusgame/tusworld/engine/settlement"
)

func landObject(l land.Land) proto.Object {
	return proto.Object{
		"id_land":  uint64(l.ID),
		"id_user":  uint64(l.IDUser),
		"id_world": uint64(l.IDWorld),
		"id_epoch": uint64(l.IDEpoch),
		"name":     l.Name,
		"granted":  l.Granted,
	}
}

func settlementObject(s settlement.Settlement) proto.Object {
	return proto.Object{
		"id_settlement": uint64(s.ID),
		"id_land":       uint64(s.IDLand),
		"name":          s.Name,
	}
}

func epochObject(ep epoch.Epoch) proto.Object {
	return proto.Object{
		"id_epoch": uint64(ep.ID),
		"id_world": uint64(ep.IDWorld),
		"active":   ep.Active,
		"finished": ep.Finished,
		"ticks":    ep.Ticks,
	}
}

func buildingObject(key building.Key, rec building.Record) proto.Object {
	return proto.Object{
		"key":    key.String(),
		"class":  key.Class,
		"id":     key.ID,
		"volume": uint64(rec.Volume),
	}
}

func humanObject(key human.Key, rec human.Record) proto.Object {
	return proto.Object{
		"key":        key.String(),
		"class":      key.Class,
		"id":         key.ID,
		"experience": key.Experience,
		"volume":     uint64(rec.Volume),
	}
}

func resourceObject(key resource.Key, rec resource.Record) proto.Object {
	return proto.Object{
		"key":    string(key),
		"volume": uint64(rec.Volume),
	}
}

func buildingObjects(set building.Set) []proto.Object {
	objects := make([]proto.Object, 0, len(set))
	for key, rec := range set {
		objects = append(objects, buildingObject(key, rec))
	}
	return sortObjects(objects)
}

func humanObjects(set human.Set) []proto.Object {
	objects := make([]proto.Object, 0, len(set))
	for key, rec := range set {
		objects = append(objects, humanObject(key, rec))
	}
	return sortObjects(objects)
}

func resourceObjects(set resource.Set) []proto.Object {
	objects := make([]proto.Object, 0, len(set))
	for key, rec := range set {
		objects = append(objects, resourceObject(key, rec))
	}
	return sortObjects(objects)
}

func sortObjects(objects []proto.Object) []proto.Object {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i]["key"].(string) < objects[j]["key"].(string)
	})
	return objects
}
