package dto

// IDParam 路径参数 :id
type IDParam struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// CreatedID 创建成功后只返回新记录的 id
type CreatedID struct {
	ID uint `json:"id"`
}
