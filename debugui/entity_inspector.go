package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/grotto/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	ComponentTypes []string
}

// CollectEntities lists every live entity with its component type names,
// in id order.
func CollectEntities(storage *ecs.Storage) []EntityInfo {
	var entities []EntityInfo
	for id := range storage.Entities() {
		components := storage.ComponentsOf(id)
		types := make([]string, 0, len(components))
		for _, c := range components {
			types = append(types, reflect.TypeOf(c).Elem().String())
		}
		entities = append(entities, EntityInfo{ID: id, ComponentTypes: types})
	}
	return entities
}

// FilterEntities keeps entities whose id or component type names contain
// filter, case-insensitively.
func FilterEntities(entities []EntityInfo, filter string) []EntityInfo {
	if filter == "" {
		return entities
	}
	filter = strings.ToLower(filter)

	filtered := make([]EntityInfo, 0, len(entities))
	for _, entity := range entities {
		if strings.Contains(fmt.Sprintf("%d", entity.ID), filter) ||
			strings.Contains(strings.ToLower(strings.Join(entity.ComponentTypes, " ")), filter) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}

// EntityInspector lists entities and shows the components of the selected
// one. Float fields and vectors can be edited in place.
type EntityInspector struct {
	storage          *ecs.Storage
	selectedEntityId ecs.EntityId
	filterText       string
	perPage          int
	currentPage      int
}

func NewEntityInspector(storage *ecs.Storage, perPage int) *EntityInspector {
	if perPage <= 0 {
		perPage = 50
	}
	return &EntityInspector{storage: storage, perPage: perPage}
}

func (ei *EntityInspector) Selected() ecs.EntityId {
	return ei.selectedEntityId
}

func (ei *EntityInspector) Select(id ecs.EntityId) {
	ei.selectedEntityId = id
}

func (ei *EntityInspector) Render() {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.InputTextWithHint("##search", "Search...", &ei.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ei.filterText = ""
		ei.currentPage = 0
	}

	entities := FilterEntities(CollectEntities(ei.storage), ei.filterText)
	totalPages := max(1, (len(entities)+ei.perPage-1)/ei.perPage)
	ei.currentPage = min(ei.currentPage, totalPages-1)

	start := ei.currentPage * ei.perPage
	end := min(start+ei.perPage, len(entities))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 200), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range entities[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ei.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ei.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", ei.currentPage+1, totalPages, len(entities)))
	imgui.SameLine()
	if imgui.Button("Prev") && ei.currentPage > 0 {
		ei.currentPage--
	}
	imgui.SameLine()
	if imgui.Button("Next") && ei.currentPage < totalPages-1 {
		ei.currentPage++
	}

	imgui.Separator()
	ei.renderSelected()
}

func (ei *EntityInspector) renderSelected() {
	if !ei.selectedEntityId.Valid() {
		imgui.Text("No entity selected")
		return
	}

	components := ei.storage.ComponentsOf(ei.selectedEntityId)
	if len(components) == 0 {
		imgui.Text(fmt.Sprintf("Entity %d has been despawned", ei.selectedEntityId))
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", ei.selectedEntityId))
	for _, component := range components {
		val := reflect.ValueOf(component).Elem()
		if imgui.TreeNodeStr(val.Type().String()) {
			renderValue(val.Type().Name(), val)
			imgui.TreePop()
		}
	}
}

// renderValue draws an editor for val, which must be addressable.
func renderValue(name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Float32:
		v := float32(val.Float())
		if imgui.InputFloat(name, &v) {
			val.SetFloat(float64(v))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		if imgui.InputInt(name, &v) {
			val.SetInt(int64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			val.SetBool(v)
		}

	case reflect.Array:
		if val.Len() == 3 && val.Type().Elem().Kind() == reflect.Float32 {
			v := (*[3]float32)(val.Addr().UnsafePointer())
			imgui.DragFloat3(name, v)
			return
		}
		imgui.Text(fmt.Sprintf("%s: %s", name, formatValue(val)))

	case reflect.Struct:
		for _, field := range globalReflectionCache.GetFields(val.Type()) {
			fieldVal := val.Field(field.Index)
			if field.IsPointer {
				if fieldVal.IsNil() {
					imgui.Text(field.Name + ": nil")
					continue
				}
				fieldVal = fieldVal.Elem()
			}
			renderValue(field.Name, fieldVal)
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, formatValue(val)))
	}
}
