package tools

import (
	"fmt"
	"reflect"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportToExcel 把结构体切片写入 sheet，表头取 excel tag（缺省为字段名），
// 列顺序即字段声明顺序。空切片同样会创建 sheet 并写出表头。
func ExportToExcel(f *excelize.File, sheet string, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %v 不是切片", data)
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %v 不是结构体切片", data)
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil {
		return err
	} else if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	headers := ExcelHeaders(elemType)
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	fields := collectFields(elemType)

	// 写数据行
	row := 2
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)

		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		for colIndex, fi := range fields {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(elem.FieldByIndex(fi.index))); err != nil {
				return err
			}
		}
		row++
	}

	return nil
}

// ExcelHeaders 返回 t 导出时的表头，ExportToExcel 写第一行时使用
func ExcelHeaders(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	fields := collectFields(t)
	headers := make([]string, len(fields))
	for i, fi := range fields {
		headers[i] = fi.header
	}
	return headers
}

type fieldInfo struct {
	index  []int
	header string
}

func collectFields(t reflect.Type) []fieldInfo {
	var fields []fieldInfo

	var collect func(t reflect.Type, parent []int)
	collect = func(t reflect.Type, parent []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)

			idx := append(append([]int(nil), parent...), i)

			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				collect(sf.Type, idx)
				continue
			}

			if sf.PkgPath != "" {
				continue
			}

			tag := sf.Tag.Get("excel")
			if tag == "-" {
				continue
			}
			if tag == "" {
				tag = sf.Name
			}

			fields = append(fields, fieldInfo{index: idx, header: tag})
		}
	}
	collect(t, nil)
	return fields
}

func cellValue(fv reflect.Value) interface{} {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return ""
		}
		fv = fv.Elem()
	}
	// excelize 对 time.Time 会写成日期序列值，这里统一转成可读文本
	if t, ok := fv.Interface().(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.RFC3339)
	}
	if s, ok := fv.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fv.Interface()
}
