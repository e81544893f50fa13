package pkg

//go:generate genny -in=generic/linked_list.go -out=int_linked_list.go -pkg=pkg gen "Value=int"
//go:generate genny -in=generic/linked_list.go -out=item/item_linked_list.go -pkg=item gen "Value=Item"
