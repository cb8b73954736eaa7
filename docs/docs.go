// Package docs registers the OpenAPI description served at /swagger/doc.json.
// Keep it in sync with the swag annotations on the HTTP handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/orders": {
            "post": {
                "description": "Проверяет подпись платёжного шлюза, пересчитывает цены по каталогу и сохраняет заказ. Повторный запрос с тем же платежом возвращает существующий заказ.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Оформить оплаченный заказ",
                "parameters": [
                    {"type": "string", "description": "ID покупателя", "name": "X-User-ID", "in": "header", "required": true},
                    {"enum": ["buyer"], "type": "string", "description": "Роль", "name": "X-User-Role", "in": "header", "required": true},
                    {"description": "Подтверждение оплаты и корзина", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.PlaceOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "Заказ уже был создан этим платежом", "schema": {"$ref": "#/definitions/handler.Order"}},
                    "201": {"description": "Заказ создан", "schema": {"$ref": "#/definitions/handler.Order"}},
                    "400": {"description": "Ошибка валидации или проверки оплаты", "schema": {"$ref": "#/definitions/utils.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Товар или покупатель не найден", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "409": {"description": "Недостаточно товара", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/orders/mine": {
            "get": {
                "description": "Заказы текущего покупателя, новые первыми",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Мои заказы",
                "parameters": [
                    {"type": "string", "description": "ID покупателя", "name": "X-User-ID", "in": "header", "required": true},
                    {"enum": ["buyer"], "type": "string", "description": "Роль", "name": "X-User-Role", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.Order"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/orders/seller": {
            "get": {
                "description": "Заказы, содержащие хотя бы один товар текущего продавца, новые первыми",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Заказы продавца",
                "parameters": [
                    {"type": "string", "description": "ID продавца", "name": "X-User-ID", "in": "header", "required": true},
                    {"enum": ["seller"], "type": "string", "description": "Роль", "name": "X-User-Role", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.Order"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/orders/{order_id}/status": {
            "patch": {
                "description": "Продавец, чей товар есть в заказе, переводит заказ по допустимому переходу",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Обновить статус заказа",
                "parameters": [
                    {"type": "string", "description": "ID продавца", "name": "X-User-ID", "in": "header", "required": true},
                    {"enum": ["seller"], "type": "string", "description": "Роль", "name": "X-User-Role", "in": "header", "required": true},
                    {"type": "string", "description": "ID заказа", "name": "order_id", "in": "path", "required": true},
                    {"description": "Новый статус", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Order"}},
                    "400": {"description": "Ошибка валидации или недопустимый переход", "schema": {"$ref": "#/definitions/utils.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "403": {"description": "Заказ не содержит товаров продавца", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Заказ не найден", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "409": {"description": "Заказ изменён параллельно", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/orders/{order_id}/track": {
            "get": {
                "description": "Доступно покупателю заказа и продавцам, чьи товары в нём есть",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Отследить заказ",
                "parameters": [
                    {"type": "string", "description": "ID пользователя", "name": "X-User-ID", "in": "header", "required": true},
                    {"enum": ["buyer", "seller"], "type": "string", "description": "Роль", "name": "X-User-Role", "in": "header", "required": true},
                    {"type": "string", "description": "ID заказа", "name": "order_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Tracking"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/utils.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Заказ не найден", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/payments/orders": {
            "post": {
                "description": "Регистрирует сумму к оплате, клиент использует ответ для оплаты через SDK шлюза",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Создать заказ в платёжном шлюзе",
                "parameters": [
                    {"type": "string", "description": "ID покупателя", "name": "X-User-ID", "in": "header", "required": true},
                    {"enum": ["buyer"], "type": "string", "description": "Роль", "name": "X-User-Role", "in": "header", "required": true},
                    {"description": "Сумма", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateGatewayOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GatewayOrder"}},
                    "400": {"description": "Некорректная сумма", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.Address": {
            "type": "object",
            "required": ["city", "street"],
            "properties": {
                "city": {"type": "string"},
                "country": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "pinCode": {"type": "string"},
                "state": {"type": "string"},
                "street": {"type": "string"}
            }
        },
        "handler.Contact": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.CreateGatewayOrderRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"}
            }
        },
        "handler.GatewayOrder": {
            "type": "object",
            "properties": {
                "amount": {"type": "integer"},
                "currency": {"type": "string"},
                "id": {"type": "string"},
                "receipt": {"type": "string"}
            }
        },
        "handler.Item": {
            "type": "object",
            "properties": {
                "price": {"type": "string"},
                "product": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1, "maximum": 1000},
                "seller": {"type": "string"},
                "sellerName": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.LineItem": {
            "type": "object",
            "required": ["product", "quantity"],
            "properties": {
                "product": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1, "maximum": 1000}
            }
        },
        "handler.Order": {
            "type": "object",
            "properties": {
                "billingAddress": {"$ref": "#/definitions/handler.Address"},
                "buyer": {"$ref": "#/definitions/handler.Contact"},
                "cancelledAt": {"type": "string"},
                "deliveredAt": {"type": "string"},
                "id": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.Item"}},
                "orderNumber": {"type": "string"},
                "payment": {"$ref": "#/definitions/handler.Payment"},
                "placedAt": {"type": "string"},
                "pricing": {"$ref": "#/definitions/handler.Pricing"},
                "returnedAt": {"type": "string"},
                "shippedAt": {"type": "string"},
                "shippingAddress": {"$ref": "#/definitions/handler.Address"},
                "status": {"type": "string"},
                "statusHistory": {"type": "array", "items": {"$ref": "#/definitions/handler.StatusEntry"}},
                "totalItems": {"type": "integer"}
            }
        },
        "handler.OrderData": {
            "type": "object",
            "required": ["billingAddress", "items", "paymentMethod", "shippingAddress"],
            "properties": {
                "billingAddress": {"$ref": "#/definitions/handler.Address"},
                "items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/handler.LineItem"}},
                "paymentMethod": {"type": "string", "enum": ["COD", "UPI", "Card", "NetBanking"]},
                "shippingAddress": {"$ref": "#/definitions/handler.Address"}
            }
        },
        "handler.Payment": {
            "type": "object",
            "properties": {
                "method": {"type": "string"},
                "paidAt": {"type": "string"},
                "status": {"type": "string"},
                "transactionId": {"type": "string"}
            }
        },
        "handler.PlaceOrderRequest": {
            "type": "object",
            "required": ["gatewayOrderId", "gatewayPaymentId", "gatewaySignature", "orderData"],
            "properties": {
                "gatewayOrderId": {"type": "string"},
                "gatewayPaymentId": {"type": "string"},
                "gatewaySignature": {"type": "string"},
                "orderData": {"$ref": "#/definitions/handler.OrderData"}
            }
        },
        "handler.Pricing": {
            "type": "object",
            "properties": {
                "discount": {"type": "string"},
                "shipping": {"type": "string"},
                "subtotal": {"type": "string"},
                "tax": {"type": "string"},
                "total": {"type": "string"}
            }
        },
        "handler.StatusEntry": {
            "type": "object",
            "properties": {
                "changedAt": {"type": "string"},
                "note": {"type": "string"},
                "status": {"type": "string"},
                "updatedBy": {"type": "string"}
            }
        },
        "handler.Tracking": {
            "type": "object",
            "properties": {
                "buyer": {"$ref": "#/definitions/handler.Contact"},
                "cancelledAt": {"type": "string"},
                "deliveredAt": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.TrackingItem"}},
                "orderId": {"type": "string"},
                "orderNumber": {"type": "string"},
                "placedAt": {"type": "string"},
                "returnedAt": {"type": "string"},
                "shippedAt": {"type": "string"},
                "status": {"type": "string"},
                "statusHistory": {"type": "array", "items": {"$ref": "#/definitions/handler.StatusEntry"}}
            }
        },
        "handler.TrackingItem": {
            "type": "object",
            "properties": {
                "price": {"type": "string"},
                "quantity": {"type": "integer"},
                "seller": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "note": {"type": "string", "maxLength": 500},
                "status": {"type": "string", "enum": ["pending", "confirmed", "processing", "shipped", "delivered", "cancelled", "returned"]}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "utils.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Storefront Orders API",
	Description:      "Оформление оплаченных заказов, статусы и отслеживание",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
